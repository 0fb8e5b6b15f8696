package test

import (
	"math/rand"
	"strconv"
	"strings"
)

var callNames = []string{"add", "subtract"}

// GetRandomProgram builds a well-formed program containing at least
// size tokens' worth of randomly nested call forms.
func GetRandomProgram(size int) string {
	var b strings.Builder

	for wrote := 0; wrote < size; {
		wrote += writeCall(&b, 3)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeCall(b *strings.Builder, depth int) int {
	b.WriteByte('(')
	b.WriteString(callNames[rand.Intn(len(callNames))])
	wrote := 1

	params := 2 + rand.Intn(2)
	for i := 0; i < params; i++ {
		b.WriteByte(' ')

		if depth > 0 && rand.Intn(2) == 0 {
			wrote += writeCall(b, depth-1)
		} else {
			b.WriteString(strconv.Itoa(rand.Intn(1000)))
			wrote++
		}
	}

	b.WriteByte(')')
	return wrote
}
