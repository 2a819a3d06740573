package renderer

// GLSL sources for the generated-mesh pipeline. Flat shading comes from
// the meshes themselves (duplicated per-face normals); the shader is a
// plain lambert plus emission and a few point lights for the glow accents.

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;
out vec2 vUV;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
    vWorldPos = (uModel * vec4(aPos, 1.0)).xyz;
    vUV = aUV;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;
in vec2 vUV;

uniform vec4 uBaseColor;
uniform vec3 uEmissive;
uniform vec3 uLightDir;
uniform float uAmbient;

uniform vec3 uPointLightPositions[8];
uniform vec3 uPointLightColors[8];
uniform float uPointLightRanges[8];
uniform int uPointLightCount;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uLightDir)), 0.0);
    vec3 lit = uBaseColor.rgb * (uAmbient + diffuse * (1.0 - uAmbient));

    for (int i = 0; i < uPointLightCount; i++) {
        vec3 toLight = uPointLightPositions[i] - vWorldPos;
        float dist = length(toLight);
        float atten = clamp(1.0 - dist / max(uPointLightRanges[i], 0.001), 0.0, 1.0);
        float nl = max(dot(n, toLight / max(dist, 0.001)), 0.0);
        lit += uBaseColor.rgb * uPointLightColors[i] * nl * atten * atten;
    }

    FragColor = vec4(lit + uEmissive, uBaseColor.a);
}
`
