package grpc

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"
)

// Values move through their JSON form, so the json tags of the models
// package define the wire shape.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func toList(v any) (*structpb.ListValue, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return structpb.NewList(items)
}

func fromStruct(s *structpb.Struct, out any) error {
	b, err := json.Marshal(s.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func fromList(l *structpb.ListValue, out any) error {
	items := l.AsSlice()
	if items == nil {
		items = []any{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
