package musicpersona

import "fmt"

// featureValueForms are the surface forms for liking judgements about a
// feature, keyed by polarity.
var featureValueForms = map[string]map[bool]string{
	"energy_mean": {
		true:  "music with high energy",
		false: "music with low energy",
	},
	"mode_0_percentage": {
		true:  "music in major mode",
		false: "music in minor mode",
	},
	"loudness_mean": {
		true:  "loud music",
		false: "silent music",
	},
	"speechiness_mean": {
		true:  `"speechy" music`,
		false: `"non-speechy" music`,
	},
	"instrumentalness_mean": {
		true:  "instrumental music",
		false: "non-instrumental music",
	},
	"valence_mean": {
		true:  "music with high valence",
		false: "music with low valence",
	},
	"danceability_mean": {
		true:  "danceable music",
		false: "music that is not danceable",
	},
}

// featureNoun gives the short noun phrase naming each feature.
var featureNoun = map[string]string{
	"energy_mean":           "energy",
	"mode_0_percentage":     "mode",
	"loudness_mean":         "loudness",
	"speechiness_mean":      "speechiness",
	"instrumentalness_mean": "instrumentalness",
	"valence_mean":          "valence",
	"danceability_mean":     "danceability",
}

func conjunction(terms []string) string {
	switch len(terms) {
	case 0:
		return ""
	case 1:
		return terms[0]
	case 2:
		return fmt.Sprintf("%s and %s", terms[0], terms[1])
	default:
		return fmt.Sprintf("%s, %s", terms[0], conjunction(terms[1:]))
	}
}

func featureNounConjunction() string {
	nouns := make([]string, 0, len(featureOrder))
	for _, name := range featureOrder {
		nouns = append(nouns, featureNoun[name])
	}
	return conjunction(nouns)
}
