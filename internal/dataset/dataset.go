// Package dataset turns a raw payload into a ready-to-browse deck. It runs
// the fixed pipeline parse, shuffle, intro extraction, so every consumer of
// loaded data sees the same canonical order.
package dataset

import (
	"context"
	"math/rand"
	"time"

	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
)

// Dataset is a fully prepared record set.
type Dataset struct {
	// Records is the question pool in canonical shuffled order, with the
	// intro already extracted.
	Records []deck.Record

	// Intro is the designated intro record, nil when the policy found none.
	Intro *deck.Record

	// Origin reports which stage of the source chain produced the payload.
	Origin source.Origin
}

// Options controls intro extraction and shuffle seeding.
type Options struct {
	IntroPolicy   deck.IntroPolicy
	IntroCategory string

	// Rand seeds the category-fair shuffle. Nil means time-seeded.
	Rand *rand.Rand
}

// DefaultOptions matches the shipped configuration: reserved intro category,
// time-seeded shuffle.
func DefaultOptions() Options {
	return Options{
		IntroPolicy:   deck.IntroReservedCategory,
		IntroCategory: deck.DefaultIntroCategory,
	}
}

// PolicyFromString maps a config value onto an intro policy. Unknown values
// fall back to the reserved-category policy.
func PolicyFromString(s string) deck.IntroPolicy {
	switch s {
	case "none":
		return deck.IntroNone
	case "first":
		return deck.IntroFirstRecord
	default:
		return deck.IntroReservedCategory
	}
}

// Load runs the source chain and prepares the result for browsing.
func Load(ctx context.Context, loader *source.Loader, opts Options) Dataset {
	res := loader.Load(ctx)
	return Prepare(res, opts)
}

// Prepare parses a loaded payload and derives the canonical deck from it.
func Prepare(res source.Result, opts Options) Dataset {
	records := deck.Parse(res.Raw)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	records = deck.Shuffle(records, rng)

	reserved := opts.IntroCategory
	if reserved == "" {
		reserved = deck.DefaultIntroCategory
	}
	intro, rest := deck.ExtractIntro(records, opts.IntroPolicy, reserved)

	return Dataset{
		Records: rest,
		Intro:   intro,
		Origin:  res.Origin,
	}
}
