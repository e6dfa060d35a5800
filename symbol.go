package huffpack

// Symbol represents one byte value.  It is always unsigned, so symbols are
// never sign-extended between counting, tree storage, and serialization.
type Symbol uint8

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// maxTreeNodes is the node count of a full tree over all 256 symbols.
const maxTreeNodes = 2*NumSymbols - 1
