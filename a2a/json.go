package a2a

import "encoding/json"

// ToJSON and the From* helpers below implement the JSON round-trip
// guarantee of spec §4.4/§8 property 7: from_json(to_json(x)) ≡ x,
// tolerant of unknown keys on the way in (Go's encoding/json already
// ignores unrecognized fields, so no custom unmarshaler is needed).

// ToJSON marshals any of Message, *Task, or AgentCard to its
// JSON-shaped wire form.
func ToJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// MessageFromJSON parses a Message.
func MessageFromJSON(data []byte) (Message, error) {
	var m Message
	err := json.Unmarshal(data, &m)
	return m, err
}

// TaskFromJSON parses a Task.
func TaskFromJSON(data []byte) (*Task, error) {
	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AgentCardFromJSON parses an AgentCard.
func AgentCardFromJSON(data []byte) (AgentCard, error) {
	var c AgentCard
	err := json.Unmarshal(data, &c)
	return c, err
}
