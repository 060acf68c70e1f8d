package constraint

// softNoPairs is the fixed, symmetric relation over letters used as the
// reciprocal in same-position soft splits: testing the first letter of a
// pair and getting No promises every remaining word satisfies the same
// position with the second letter. Chosen for visual/phonetic similarity;
// reproduced verbatim from spec.md §4.2(1) — this table is part of the
// contract, not a tuning knob.
var softNoPairs = [...][2]byte{
	{'e', 'i'}, {'i', 'e'},
	{'c', 'k'}, {'k', 'c'},
	{'s', 'z'}, {'z', 's'},
	{'i', 'l'}, {'l', 'i'},
	{'m', 'n'}, {'n', 'm'},
	{'u', 'v'}, {'v', 'u'},
	{'o', 'q'}, {'q', 'o'},
	{'c', 'g'}, {'g', 'c'},
	{'b', 'p'}, {'p', 'b'},
	{'i', 't'}, {'t', 'i'},
	{'r', 'e'}, {'e', 'r'},
	{'a', 'r'}, {'r', 'a'},
	{'i', 'j'}, {'j', 'i'},
	{'v', 'w'}, {'w', 'v'},
	{'q', 'g'}, {'g', 'q'},
	{'e', 'b'}, {'b', 'e'},
	{'e', 'f'}, {'f', 'e'},
	{'r', 'p'}, {'p', 'r'},
	{'r', 'b'}, {'b', 'r'},
	{'t', 'f'}, {'f', 't'},
	{'y', 'x'}, {'x', 'y'},
	{'y', 'v'}, {'v', 'y'},
	{'o', 'g'}, {'g', 'o'},
	{'p', 'f'}, {'f', 'p'},
	{'a', 'h'}, {'h', 'a'},
	{'d', 'b'}, {'b', 'd'},
	{'j', 'l'}, {'l', 'j'},
}

// reciprocal maps each letter index (0='a') to the single reciprocal letter
// index registered for it in softNoPairs, or -1 if none. Built once at
// package init so Reciprocal is an O(1) lookup.
var reciprocal [26]int

func init() {
	for i := range reciprocal {
		reciprocal[i] = -1
	}
	// A letter may appear as a test letter in more than one pair (e.g. 'i'
	// pairs with 'e', 'l', 't', and 'j'); the first occurrence in table
	// order wins, matching the reference lookup's linear first-match scan.
	for _, pair := range softNoPairs {
		test := int(pair[0] - 'a')
		req := int(pair[1] - 'a')
		if reciprocal[test] < 0 {
			reciprocal[test] = req
		}
	}
}

// Reciprocal returns the registered same-letter soft-no partner for letter
// (0='a'..25='z'), and true if one is registered. Each letter has at most one
// registered reciprocal: where the table pairs a letter with several, only
// the first pair in table order is registered.
func Reciprocal(letter int) (int, bool) {
	if letter < 0 || letter >= 26 {
		return 0, false
	}
	r := reciprocal[letter]
	return r, r >= 0
}
