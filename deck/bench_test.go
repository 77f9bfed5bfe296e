package deck

import (
	"context"
	"testing"
)

func BenchmarkLoader_Process(b *testing.B) {
	ch := make(chan []byte, b.N+1)
	ch <- []byte(twoSlides)
	for i := 0; i < b.N; i++ {
		ch <- []byte(threeSlides)
	}

	loader := NewLoader(NewSyncChannelWatcher(ch), func(context.Context, Deck, Deck) error { return nil }).SyncMode()

	ctx := context.Background()
	if err := loader.Start(ctx); err != nil {
		b.Fatalf("Start() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loader.Process(ctx)
	}
}

func BenchmarkDeck_Validate(b *testing.B) {
	d := Deck{Slides: []Slide{{ID: "/a", Title: "A"}, {ID: "/b", Title: "B"}, {Title: "C"}}}
	for i := 0; i < b.N; i++ {
		_ = d.Validate()
	}
}
