package hush

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events. Event fields never carry plaintext.
var (
	SignalProcessorCreated = capitan.NewSignal("hush.processor.created", "Processor instantiated")
	SignalReceiveStart     = capitan.NewSignal("hush.receive.start", "Receive operation beginning")
	SignalReceiveComplete  = capitan.NewSignal("hush.receive.complete", "Receive operation finished")
	SignalSendStart        = capitan.NewSignal("hush.send.start", "Send operation beginning")
	SignalSendComplete     = capitan.NewSignal("hush.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyHiddenCount    = capitan.NewIntKey("hidden_count")
	KeyDisclosedCount = capitan.NewIntKey("disclosed_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string, hidden, disclosed int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyHiddenCount.Field(hidden),
		KeyDisclosedCount.Field(disclosed),
	)
}

// emitReceiveStart emits an event when receive begins.
func emitReceiveStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

// emitSendStart emits an event when send begins.
func emitSendStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, hidden, disclosed int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyHiddenCount.Field(hidden),
		KeyDisclosedCount.Field(disclosed),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}
