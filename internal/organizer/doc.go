// Package organizer moves the files of a single directory into category
// subdirectories chosen by filename extension.
//
// An Organizer owns one target directory, the category rules used to
// classify its files, and the journal of moves completed by the most
// recent batch. Organize performs or previews one batch, Undo replays the
// journal backwards, and CleanEmpty removes category directories a batch
// or an undo left behind empty. Per-file failures never abort a batch:
// they are counted, recorded, and surfaced through the optional Reporter.
package organizer
