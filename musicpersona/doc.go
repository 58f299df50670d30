// Package musicpersona implements a dialogue domain that guesses a person's
// extraversion from the audio features of music they listen to and explains
// its prediction on demand. It bundles the domain ontology, a logistic
// classifier with a linear explainer, a keyword understander and an English
// generator, so a bot can be assembled from this package alone.
package musicpersona
