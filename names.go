package main

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Word pools for generated display names. A client that connects without
// choosing a name gets one of the form <Adjective><Noun><0-19>.
var nameAdjectives = []string{
	"agile", "bold", "brave", "bright", "calm", "clever", "cosmic", "crafty",
	"daring", "dashing", "eager", "electric", "fabled", "fierce", "frosty",
	"gentle", "giant", "gleaming", "golden", "happy", "hasty", "hidden",
	"jolly", "keen", "lively", "lucky", "mellow", "mighty", "nimble", "noble",
	"plucky", "proud", "quick", "quiet", "rapid", "royal", "rustic", "savvy",
	"shiny", "silent", "sly", "snappy", "solar", "speedy", "spry", "stellar",
	"sturdy", "swift", "vivid", "wild", "wise", "witty", "zany", "zesty",
}

var nameNouns = []string{
	"badger", "bandit", "beacon", "bison", "breeze", "cactus", "comet",
	"condor", "coyote", "cricket", "dolphin", "dragon", "falcon", "ferret",
	"firefly", "fox", "gecko", "glacier", "heron", "hornet", "jackal",
	"jaguar", "kestrel", "lantern", "lemur", "lynx", "marmot", "meteor",
	"mongoose", "moose", "narwhal", "nebula", "ocelot", "orca", "osprey",
	"otter", "panther", "pelican", "penguin", "phoenix", "pirate", "puffin",
	"racoon", "raven", "rocket", "salmon", "sparrow", "sprocket", "tiger",
	"toucan", "viper", "walrus", "wizard", "wombat",
}

// randomIndex picks a pseudo-uniform index in [0, n) using crypto/rand.
func randomIndex(n int) int {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return (int(b[0])<<8 | int(b[1])) % n
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func randomName() string {
	adjective := nameAdjectives[randomIndex(len(nameAdjectives))]
	noun := nameNouns[randomIndex(len(nameNouns))]

	return fmt.Sprintf("%s%s%d", capitalize(adjective), capitalize(noun), randomIndex(20))
}
