package namespace

import "errors"

// errStopWalk ends a trie walk at the first matching prefix.
var errStopWalk = errors.New("stop walk")
