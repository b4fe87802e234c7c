// Package preflight provides readiness checks for the directories and
// rules files sortd operates on.
//
// The CLI "sortd status" command renders every check for a target
// directory; "sortd organize" relies on the organizer's own validation
// instead, so a failing check here never blocks a batch, it only explains
// one.
package preflight
