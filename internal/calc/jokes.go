package calc

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/jokes.yaml
var jokesYAML []byte

type Joke struct {
	Setup     string `yaml:"setup" json:"setup"`
	Punchline string `yaml:"punchline" json:"punchline"`
}

func ParseJokes(data []byte) ([]Joke, error) {
	var doc struct {
		Jokes []Joke `yaml:"jokes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing jokes: %w", err)
	}
	if len(doc.Jokes) == 0 {
		return nil, errors.New("parsing jokes: no jokes")
	}
	return doc.Jokes, nil
}

// DefaultJokes returns the embedded joke list.
func DefaultJokes() []Joke {
	js, err := ParseJokes(jokesYAML)
	if err != nil {
		panic(err)
	}
	return js
}

// PickJoke draws uniformly from jokes, which must be non-empty.
func PickJoke(rng Rand, jokes []Joke) Joke {
	return jokes[rng.IntN(len(jokes))]
}
