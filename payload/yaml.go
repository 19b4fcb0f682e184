package payload

import "gopkg.in/yaml.v3"

// YAML encodes and extracts a value as YAML. Fallible both ways; errors
// are the yaml.v3 error types.
type YAML[T any] struct {
	Value T
}

func (y YAML[T]) EncodePayload() (Data, error) {
	b, err := yaml.Marshal(y.Value)
	if err != nil {
		return Data{}, err
	}
	return FromBytes(b), nil
}

func (y *YAML[T]) ExtractPayload(d Data) error {
	return yaml.Unmarshal(d.IntoBytes(), &y.Value)
}
