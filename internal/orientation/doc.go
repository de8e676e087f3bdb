// Package orientation holds the domain of the living orientation
// consent workflow: the static guidance text tables and explainer
// rosters, the shared-token access gate, the signature data-URL codec,
// and the workflow error kinds with their HTTP response mapping.
//
// All tables are immutable after process start; the workflow itself is
// stateless between requests (session context travels in query and
// form parameters).
package orientation
