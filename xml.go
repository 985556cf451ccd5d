package hush

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	_ xml.Marshaler       = Secret[int]{}
	_ xml.MarshalerAttr   = Secret[int]{}
	_ xml.Unmarshaler     = (*Secret[int])(nil)
	_ xml.UnmarshalerAttr = (*Secret[int])(nil)
	_ xml.Marshaler       = Disclosed[int]{}
	_ xml.MarshalerAttr   = Disclosed[int]{}
)

// MarshalXML encodes Placeholder as the character data of start.
func (Secret[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(Placeholder, start)
}

// MarshalXMLAttr encodes Placeholder as the attribute value.
func (Secret[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: Placeholder}, nil
}

// UnmarshalXML decodes the plaintext from the element as T would be decoded.
func (s *Secret[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return d.DecodeElement(&s.v, &start)
}

// UnmarshalXMLAttr decodes the plaintext from the attribute value.
//
// The value is decoded as the character data of a synthetic element, which
// encoding/xml converts with the same rules it applies to attributes.
func (s *Secret[T]) UnmarshalXMLAttr(attr xml.Attr) error {
	if u, ok := any(&s.v).(xml.UnmarshalerAttr); ok {
		return u.UnmarshalXMLAttr(attr)
	}
	var b strings.Builder
	b.WriteString("<v>")
	if err := xml.EscapeText(&b, []byte(attr.Value)); err != nil {
		return err
	}
	b.WriteString("</v>")
	return xml.NewDecoder(strings.NewReader(b.String())).Decode(&s.v)
}

// MarshalXML encodes the plaintext as T would be encoded under start.
func (d Disclosed[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(d.v, start)
}

// MarshalXMLAttr encodes the plaintext as an attribute value.
func (d Disclosed[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	value, err := xmlAttrValue(d.v)
	if err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: name, Value: value}, nil
}

// xmlAttrValue renders v the way encoding/xml renders attribute values.
func xmlAttrValue(v any) (string, error) {
	switch tv := v.(type) {
	case xml.MarshalerAttr:
		attr, err := tv.MarshalXMLAttr(xml.Name{})
		return attr.Value, err
	case encoding.TextMarshaler:
		text, err := tv.MarshalText()
		return string(text), err
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return "", nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", nil
		}
		return xmlAttrValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	}
	return "", fmt.Errorf("%w: xml attribute of type %s", ErrInvalidType, rv.Type())
}
