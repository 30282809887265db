/*

Package mili provides container-agnostic generic operations over a closed set
of container kinds: ordered sequence, linked sequence, unique-key set and
key-to-value mapping.

The goal is to let you write one algorithm that works uniformly across these
kinds without hand-writing a specialized version per kind. The concrete
containers themselves are external collaborators (see the containers
subpackage); this package only defines the capability contracts they must
fulfil and the generic operations written against those contracts.

Each required capability has its own small interface, and each container kind
implements the capabilities it supports. A generic algorithm therefore states
its needs in its signature, and the dispatch to the kind-specific behavior is
resolved where the concrete container type meets the interface, without any
runtime type switching inside the algorithms themselves.

Lookup comes in two call-site styles. Find fails with ErrNotFound when no
match exists, for callers that want to propagate "not found" like any other
error. Lookup returns a comma-ok pair instead, for callers to whom a missing
element is an expected, non-exceptional outcome.

*/
package mili
