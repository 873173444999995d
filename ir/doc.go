// Package ir is the block/container document model for INI-style text.
//
// # Overview
//
// A parsed configuration becomes a tree of typed blocks that reproduce
// the original bytes exactly when rendered unmodified. The tree has two
// container levels:
//
//	Document -> Section | Comment | Space
//	Section  -> Option  | Comment | Space
//
// Comment and Space blocks are runs of contiguous comment or blank
// lines; Option is a key/value leaf. Mutations touch only the blocks
// they name, so every untouched line renders byte-identical to the
// source.
//
// # Ownership
//
// Every block holds a non-owning back-reference to the container that
// holds it; Container() is nil for a detached block. Clone on any node
// deep-copies the subtree and detaches its top: children of the clone
// point at the clone, and mutating either tree never affects the other.
// Operations that need the owner (AddBefore, AddAfter) fail with
// ErrNotAttached on detached blocks; reading and rendering stay valid.
//
// # Mapping facades
//
// Document maps section names to sections and Section maps normalized
// option keys to options, both in container order. The two-level
// Document.Get is deliberately not a plain mapping get: a missing
// section is always an error, while a missing option can fall back via
// LookupOption. Keys normalize through Document.OptionXform (lower-case
// by default); the original casing still renders.
//
// # Rendering
//
// String on any node concatenates its blocks' text. Parsed blocks keep
// their captured lines; a block counts as updated once its identity
// changed (section renamed, option value set) and from then on renders
// synthesized text. The updated flag is sticky.
//
// # Errors
//
// All mutations are atomic: on ErrNoSection, ErrNoOption,
// ErrDuplicateSection, ErrDuplicateOption, ErrValue or ErrNotAttached
// the tree is exactly as it was before the call.
//
// # Thread Safety
//
// Trees are not thread-safe. Concurrent use of the same tree requires
// external synchronization; clones share no storage and may be mutated
// independently.
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/parse - Parses text into a Document
//   - github.com/confedit/go-confedit/encode - Writes and colorizes documents
//   - github.com/confedit/go-confedit/token - Line classification
package ir
