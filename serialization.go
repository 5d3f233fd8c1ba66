package bcd

import "github.com/globalsign/mgo/bson"

// GetBSON marshals x as its decimal string rendering, which survives any
// digit count and round-trips NaN.
func (x *Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON unmarshals a decimal string into x.
func (x *Int) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	v, err := FromString(s)
	if err != nil {
		return err
	}
	*x = *v
	x.constant = false
	return nil
}
