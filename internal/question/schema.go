package question

// bankSchema is the JSON Schema for the embedded question bank.
// Structural rules only; cross-field checks (correct index in range,
// unique IDs) live in load().
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "topic", "difficulty", "title", "prompt", "options", "correctAnswer", "explanation"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "topic": {"type": "string", "enum": ["arrays", "linkedlists"]},
          "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
          "title": {"type": "string", "minLength": 1},
          "prompt": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 2,
            "items": {"type": "string", "minLength": 1}
          },
          "correctAnswer": {"type": "integer", "minimum": 0},
          "explanation": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
