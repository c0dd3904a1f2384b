package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	BeatsPerMinute = kingpin.Flag("bpm", "Song tempo, used for clipping and song length").Default("120").Short('b').Float64()
	Clip           = kingpin.Flag("clip", "Drop rows after the end of the song when saving").Bool()
	Duration       = kingpin.Flag("duration", "Song length, read from the audio file when unset").Short('d').Duration()
	UndoLevels     = kingpin.Flag("undo-levels", "Undo history depth").Default("40").Int()
	Database       = kingpin.Flag("db", "Revision database").Default("./beatmaps.db").String()
	Difficulty     = kingpin.Flag("difficulty", "Chart to open, the first one found when empty").Short('D').String()

	// Song/chart directory, shared by every command
	Directory string

	Info     = command("info", "Summarise a chart")
	Show     = command("show", "Print the beat grid")
	Stretch  = command("stretch", "Double the grid resolution and save")
	Squish   = command("squish", "Halve the grid resolution and save")
	Force    = Squish.Flag("force", "Squish even when authored content is dropped").Short('f').Bool()
	Import   = command("import", "Convert a StepMania chart into a difficulty file")
	Edit     = command("edit", "Edit the chart interactively")
	History  = command("history", "List saved revisions")
	Restore  = command("restore", "Write a saved revision back to the chart")
	Revision = Restore.Arg("revision", "Revision id").Required().Int64()
)

func command(name, help string) *kingpin.CmdClause {
	cmd := kingpin.Command(name, help)
	cmd.Arg("directory", "Song/chart directory").Required().ExistingDirVar(&Directory)
	return cmd
}

// Parse reads the command line and returns the selected command.
func Parse(args []string) string {
	kingpin.Version("0.3.0")
	return kingpin.MustParse(kingpin.CommandLine.Parse(args))
}
