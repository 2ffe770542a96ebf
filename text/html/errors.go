package html

import "errors"

// ErrNoNode is returned by InnerText for a nil node.
var ErrNoNode = errors.New("html: no node to extract text from")
