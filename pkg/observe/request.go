package observe

// Shape discriminates the two request layouts providers put on the wire.
type Shape int

const (
	// ShapeUnknown marks a payload that is neither a flat prompt nor a
	// message list. It is logged verbatim at warning level, never dropped.
	ShapeUnknown Shape = iota
	// ShapeFlatPrompt is a single prompt string under the "prompt" key.
	ShapeFlatPrompt
	// ShapeMessageList is an ordered sequence of role-tagged fragments under
	// the "messages" key.
	ShapeMessageList
)

// Message is one role-tagged fragment of a message-list request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a provider payload normalized into one of two recognized
// shapes. Raw always holds the original payload.
type Request struct {
	Shape    Shape
	Prompt   string
	Messages []Message
	Raw      map[string]any
}

// NormalizeRequest classifies a raw provider payload in a single step, so
// log sites never probe fields ad hoc. Fragment order is preserved.
func NormalizeRequest(raw map[string]any) Request {
	request := Request{Shape: ShapeUnknown, Raw: raw}

	if prompt, ok := raw["prompt"].(string); ok {
		request.Shape = ShapeFlatPrompt
		request.Prompt = prompt
		return request
	}

	messages, ok := normalizeMessages(raw["messages"])
	if ok {
		request.Shape = ShapeMessageList
		request.Messages = messages
	}
	return request
}

func normalizeMessages(value any) ([]Message, bool) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []map[string]any:
		items = make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
	case []Message:
		return v, len(v) > 0
	default:
		return nil, false
	}

	if len(items) == 0 {
		return nil, false
	}
	messages := make([]Message, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		content, ok := fields["content"].(string)
		if !ok {
			return nil, false
		}
		role, _ := fields["role"].(string)
		messages = append(messages, Message{Role: role, Content: content})
	}
	return messages, true
}
