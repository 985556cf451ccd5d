package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/zoobzio/hush"
	"github.com/zoobzio/hush/json"
	"github.com/zoobzio/hush/msgpack"
	hushtest "github.com/zoobzio/hush/testing"
)

func BenchmarkProcessor_Send_JSON(b *testing.B) {
	proc, _ := hush.NewProcessor[hushtest.Config](json.New())
	cfg := hushtest.NewConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Send(context.Background(), &cfg)
	}
}

func BenchmarkProcessor_Receive_JSON(b *testing.B) {
	proc, _ := hush.NewProcessor[hushtest.Config](json.New())
	cfg := hushtest.NewConfig()
	data, _ := proc.Send(context.Background(), &cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Receive(context.Background(), data)
	}
}

func BenchmarkProcessor_Send_MessagePack(b *testing.B) {
	proc, _ := hush.NewProcessor[hushtest.Credentials](msgpack.New())
	creds := hushtest.NewCredentials()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Send(context.Background(), &creds)
	}
}

func BenchmarkUse_Cached(b *testing.B) {
	codec := json.New()
	_, _ = hush.Use[hushtest.Credentials](codec)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hush.Use[hushtest.Credentials](codec)
	}
}

func BenchmarkSecret_Format(b *testing.B) {
	s := hush.From(hushtest.TestPassword)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%v", s)
	}
}

func BenchmarkSecret_Equal(b *testing.B) {
	x := hush.From(hushtest.TestDSN)
	y := hush.From(hushtest.TestDSN)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hush.Equal(x, y)
	}
}
