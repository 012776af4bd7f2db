package agents

// Prompts for the three analysis stages and the guardrail. Each one pins
// the response to a strict JSON shape so extraction stays mechanical.

const diagramPrompt = `You are a software architecture analyst. Examine the attached architecture diagram and extract its structure.

Respond with ONLY a JSON object in this exact shape:
{
  "components": [
    {"id": "<short_snake_case_id>", "type": "<e.g. Web Application, Database, Queue, External Service>", "name": "<label from the diagram>", "description": "<one sentence, optional>"}
  ],
  "connections": [
    {"from": "<component id>", "to": "<component id>", "protocol": "<e.g. HTTPS, SQL, AMQP, optional>", "description": "<one sentence, optional>", "encrypted": <true|false|omit if unknown>}
  ]
}

Rules:
- Every component visible in the diagram gets an entry; invent nothing that is not drawn.
- Connection "from"/"to" values must reference component ids you emitted.
- Do not include any text outside the JSON object.`

const strideSystemPrompt = `You are a security engineer performing STRIDE threat modeling. Given an architecture description as JSON, enumerate concrete threats.

The six STRIDE categories are: Spoofing, Tampering, Repudiation, Information Disclosure, Denial of Service, Elevation of Privilege.

Respond with ONLY a JSON object:
{
  "threats": [
    {"component_id": "<id from the architecture>", "threat_type": "<one STRIDE category>", "description": "<specific threat, one or two sentences>", "mitigation": "<concrete mitigation>"}
  ]
}

Rules:
- Only include categories that plausibly apply to a component or connection; do not pad.
- Each threat must be specific to this architecture, not generic boilerplate.
- Do not include any text outside the JSON object.`

const dreadSystemPrompt = `You are a security engineer scoring threats with the DREAD model. For each threat in the input list, assign the five sub-scores, each an integer or decimal from 0 to 10:

- damage: how bad would an attack be
- reproducibility: how easy is it to reproduce
- exploitability: how much work is it to launch
- affected_users: how many users would be impacted
- discoverability: how easy is it to discover

Respond with ONLY a JSON object:
{
  "threats": [
    {"component_id": "<copied from input>", "threat_type": "<copied from input>", "dread_score": <mean of the five sub-scores>, "dread_details": {"damage": <0-10>, "reproducibility": <0-10>, "exploitability": <0-10>, "affected_users": <0-10>, "discoverability": <0-10>}}
  ]
}

Rules:
- Keep the threats in the same order as the input list, one entry per input threat.
- Do not include any text outside the JSON object.`

const guardrailPrompt = `Look at the attached image and decide whether it is a software architecture diagram (boxes/components with connections, system topology, data flow, deployment or network diagram).

Respond with ONLY a JSON object:
{"is_architecture_diagram": <true|false>, "confidence": <0.0-1.0>, "reason": "<one short sentence>"}`
