// Package templates is the template store: it serves the bodies of every
// file the generator can place, keyed by their path under files/. Bodies are
// compiled into the binary, so generation never touches the network or the
// installed tree.
package templates
