package models

import "encoding/json"

// Order is one customer order. The store controls ID, Date and Status;
// whatever else the client sent lives in Extra and is flattened back into
// the JSON object on marshal, so the wire shape stays a single flat object.
type Order struct {
	ID     int
	Date   string // RFC 3339 timestamp
	Status string
	Extra  map[string]any
}

// StatusNew is the status every order starts in. No transition model exists.
const StatusNew = "new"

func (o Order) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(o.Extra)+3)
	for k, v := range o.Extra {
		obj[k] = v
	}
	obj["id"] = o.ID
	obj["date"] = o.Date
	obj["status"] = o.Status
	return json.Marshal(obj)
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*o = Order{Extra: make(map[string]any)}
	for k, v := range obj {
		switch k {
		case "id":
			if n, ok := v.(float64); ok {
				o.ID = int(n)
			}
		case "date":
			if s, ok := v.(string); ok {
				o.Date = s
			}
		case "status":
			if s, ok := v.(string); ok {
				o.Status = s
			}
		default:
			o.Extra[k] = v
		}
	}
	return nil
}
