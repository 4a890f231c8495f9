package resumes

import "encoding/json"

// Resume is a record owned by exactly one user. Beyond id and userId the
// shape is an open JSON object chosen by the client.
type Resume struct {
	ID     string
	UserID string
	Fields map[string]any
}

// MarshalJSON flattens the record into a single JSON object:
// {"id": ..., "userId": ..., <fields>}.
func (r Resume) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	out["userId"] = r.UserID
	return json.Marshal(out)
}

// sanitizeFields returns a copy of fields with the reserved id and userId
// keys removed. Repositories apply it to every write so a patch can never
// reassign a record to another user.
func sanitizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "userId" {
			continue
		}
		out[k] = v
	}
	return out
}
