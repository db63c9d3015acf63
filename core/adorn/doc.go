// Package adorn rewrites the word elements of a linguistically annotated XML
// document in a single forward pass.
//
// Every w and pc element receives a stable identifier under one of three
// numbering schemes, a part code placing it within a split word (N, I, M,
// F), and a complete set of linguistic attributes (tok, spe, pos, lem, reg,
// eos) with redundant ones optionally pruned. Along the way the pass can
// insert pseudo-page milestones every so many words and sentence-boundary
// milestones after sentence-final words.
//
// A Transducer consumes parse events (see core/xml) and writes transformed
// events to a sink. It keeps at most one word element back, the one whose
// text is still arriving; everything else is written at once. Split-word
// part counts and numbering widths come from a prior counting pass over the
// same document (see core/census).
//
//	t, err := adorn.New(cfg, adorn.Collaborators{Split: split, Maxima: &maxima}, writer)
//	if err != nil { ... }
//	if err := xml.Stream(r, t); err != nil { ... }
//	if err := t.Close(); err != nil { ... }
//	records := t.Records()
//
// A Transducer handles one document and is not safe for concurrent use.
package adorn
