package hush

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

var (
	concealerType = reflect.TypeFor[concealer]()
	discloserType = reflect.TypeFor[discloser]()
)

// Processor decodes and encodes a host type through a Codec.
// Use Receive for ingress and Send for egress.
//
// Receive is transparent: Secret fields are filled with the decoded
// plaintext. Send redacts every Secret field and reveals only fields
// declared as Disclosed.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T any] struct {
	codec    Codec
	typeName string

	// Field paths, immutable after construction
	hidden    []string
	disclosed []string
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	denyDisclosure bool
}

// WithoutDisclosure rejects types that declare any Disclosed field.
// Use it for processors whose output must never carry plaintext, such as
// API responses or audit records.
func WithoutDisclosure() ProcessorOption {
	return func(c *processorConfig) {
		c.denyDisclosure = true
	}
}

// fieldPlan lists the secret-bearing field paths of a type.
type fieldPlan struct {
	typeName  string
	hidden    []string
	disclosed []string
}

// NewProcessor creates a new Processor for struct type T.
//
// T is scanned once for Secret and Disclosed fields, including fields of
// nested structs, struct pointers, and Secret elements of slices, arrays,
// and maps.
func NewProcessor[T any](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	var cfg processorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := buildFieldPlan[T]()
	if err != nil {
		return nil, err
	}

	if cfg.denyDisclosure && len(plan.disclosed) > 0 {
		return nil, newConfigError(ErrDisclosureDenied, plan.typeName, plan.disclosed[0])
	}

	p := &Processor[T]{
		codec:     codec,
		typeName:  plan.typeName,
		hidden:    plan.hidden,
		disclosed: plan.disclosed,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), p.typeName, len(p.hidden), len(p.disclosed))
	return p, nil
}

// ContentType returns the content type of the processor's codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Secrets returns the paths of fields that are redacted on Send.
func (p *Processor[T]) Secrets() []string {
	return append([]string(nil), p.hidden...)
}

// Disclosures returns the paths of fields that are revealed on Send.
func (p *Processor[T]) Disclosures() []string {
	return append([]string(nil), p.disclosed...)
}

// Receive unmarshals data into a new T.
// Use for data coming from external sources (requests, config, storage).
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitReceiveStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	return &obj, nil
}

// Send marshals obj. Secret fields are written as Placeholder; Disclosed
// fields carry their plaintext.
// Use for data going to external destinations (responses, events, logs).
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitSendStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.hidden), len(p.disclosed), retErr)
	}()

	var v any = obj
	if obj == nil {
		v = nil
	}

	data, err := p.codec.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// buildFieldPlan creates the field plan for type T.
func buildFieldPlan[T any]() (*fieldPlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newConfigError(ErrInvalidType, rt.String(), "")
	}

	// A bare Secret or Disclosed has no fields to inventory.
	if rt.Implements(concealerType) {
		plan := &fieldPlan{typeName: rt.Name()}
		if rt.Implements(discloserType) {
			plan.disclosed = []string{"."}
		} else {
			plan.hidden = []string{"."}
		}
		return plan, nil
	}

	spec := sentinel.Scan[T]()
	plan := &fieldPlan{
		typeName: spec.TypeName,
	}

	seen := map[reflect.Type]bool{rt: true}
	buildFieldPlanRecursive(plan, spec, "", seen)

	return plan, nil
}

// buildFieldPlanRecursive records the secret-bearing paths under each field
// of spec. seen holds the composite types on the current path so that
// self-referential types terminate.
func buildFieldPlanRecursive(plan *fieldPlan, spec sentinel.Metadata, namePrefix string, seen map[reflect.Type]bool) {
	for _, field := range spec.Fields {
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}
		plan.walk(field.ReflectType, fullName, seen)
	}
}

// walk records rt at name if it is a Secret or Disclosed, and otherwise
// descends through pointers, containers, map keys and nested structs.
//
// Elements are named Name[], map values Name[keytype] and map keys Name[key].
func (fp *fieldPlan) walk(rt reflect.Type, name string, seen map[reflect.Type]bool) {
	if fp.record(rt, name) {
		return
	}

	switch rt.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
	default:
		return
	}
	if seen[rt] {
		return
	}
	seen[rt] = true
	defer delete(seen, rt)

	switch rt.Kind() {
	case reflect.Pointer:
		fp.walk(rt.Elem(), name, seen)
	case reflect.Slice, reflect.Array:
		fp.walk(rt.Elem(), name+"[]", seen)
	case reflect.Map:
		fp.walk(rt.Key(), name+"[key]", seen)
		fp.walk(rt.Elem(), fmt.Sprintf("%s[%s]", name, rt.Key()), seen)
	case reflect.Struct:
		if nested := scanNestedType(rt); nested != nil {
			buildFieldPlanRecursive(fp, *nested, name, seen)
		}
	}
}

// record adds name to the plan if rt is a Secret or Disclosed type.
func (fp *fieldPlan) record(rt reflect.Type, name string) bool {
	switch {
	case rt.Implements(discloserType):
		fp.disclosed = append(fp.disclosed, name)
		return true
	case rt.Implements(concealerType):
		fp.hidden = append(fp.hidden, name)
		return true
	}
	return false
}

// scanNestedType returns the field metadata of a nested struct type.
// Secrets are found by field type alone, so struct tags are not read.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
	}
	for _, sf := range reflect.VisibleFields(rt) {
		if !sf.IsExported() || len(sf.Index) > 1 {
			continue
		}
		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		})
	}
	return &spec
}
