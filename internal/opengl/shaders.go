package opengl

// vertex shader: MVP + model transform, world-space position and normal to
// the fragment stage.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;
out vec3 fragWorldPos;

void main() {
    gl_Position  = mvp * vec4(inPosition, 1.0);
    fragColor    = inColor;
    fragNormal   = mat3(model) * inNormal;
    fragUV       = inUV;
    fragWorldPos = (model * vec4(inPosition, 1.0)).xyz;
}
` + "\x00"

// fragment shader: Blinn-Phong with one directional light plus flat ambient.
// The emissive term is additive and independent of lighting; the hover
// highlight writes into it.
const fragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;
in vec3 fragWorldPos;

out vec4 outColor;

uniform vec3  lightDir;
uniform vec3  lightColor;
uniform float lightIntensity;
uniform vec3  ambientColor;
uniform vec3  cameraPos;

uniform vec3  matBaseColor;
uniform float matOpacity;
uniform vec3  matSpecular;
uniform float matShininess;
uniform vec3  matEmissive;
uniform bool  unlit;

uniform sampler2D baseColorTex;
uniform bool      hasTexture;

void main() {
    vec4 baseColor = fragColor * vec4(matBaseColor, 1.0);
    if (hasTexture) {
        baseColor *= texture(baseColorTex, fragUV);
    }

    if (unlit) {
        outColor = vec4(baseColor.rgb + matEmissive, baseColor.a * matOpacity);
        return;
    }

    vec3 N = normalize(fragNormal);
    vec3 V = normalize(cameraPos - fragWorldPos);
    vec3 L = normalize(-lightDir);

    vec3 color = ambientColor * baseColor.rgb;

    float NdL = max(dot(N, L), 0.0);
    color += lightColor * lightIntensity * NdL * baseColor.rgb;
    if (NdL > 0.0) {
        vec3 H = normalize(L + V);
        color += lightColor * lightIntensity *
                 matSpecular * pow(max(dot(N, H), 0.0), matShininess);
    }

    color += matEmissive;

    outColor = vec4(color, baseColor.a * matOpacity);
}
` + "\x00"
