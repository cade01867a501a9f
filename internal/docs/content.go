package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Actions, prompts, and the task table",
		Content: topicQuickstart,
	},
	{
		Name:    "file-format",
		Title:   "Task File Format",
		Summary: "Layout of tasklist.json",
		Content: topicFileFormat,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Optional config file, flags, and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = `Quick Start
===========

Run tasklist with no arguments to start a session:

    tasklist

Each prompt reads one line. Actions:

  add      Ask for priority, date, time and details, then store the task
  print    Show the task table
  edit     Show the table, pick a task number, then a field to change
  delete   Show the table, pick a task number, remove it
  end      Save and exit

Adding a task
-------------

  Priority   C (critical, red), H (high, yellow), N (normal, green),
             L (low, blue). Any case. Anything else asks again.
  Date       yyyy-mm-dd. The first date found in the line is used, so
             "due 2024-02-29" works. Impossible days are refused.
  Time       hh:mm, 0:00 to 23:59.
  Details    One or more lines, ended by an empty line or a line of
             only spaces. Lines longer than 44 characters are cut into
             44-character pieces. If the first line is blank the task is
             discarded.

The table
---------

  N   position; deleting a task renumbers the ones after it
  P   priority color
  D   due color: red overdue, yellow today, green later

The due color is set when the task is added or its date is edited. It is
not refreshed when tasks are loaded from disk.

Editing
-------

Fields are priority, date, time and task. A new date keeps the time of
day; a new time keeps the date.

Saving
------

"end" writes the task file. Closing input (Ctrl-D) saves the same way.
Ctrl-C quits without saving. An empty list never overwrites the file.
`

const topicFileFormat = `Task File Format
================

Tasks are stored as a JSON array, one object per task, in table order:

    [{"date":"2023-05-01","time":"9:30","priority":"<tag>","overdue":"<tag>","details":["line1","line2"]}]

  date       yyyy-mm-dd, zero padded
  time       h:m, NOT zero padded (9:05 is written as 9:5)
  priority   color tag: the terminal escape sequence of the swatch
  overdue    color tag, as last computed
  details    the 44-character pieces, in order; at least one

Tags that are not one of the four known swatches are kept as written and
printed verbatim in the table.

A missing, empty, or malformed file starts an empty list. The file is
replaced atomically on save.
`

const topicConfig = `Configuration Reference
=======================

Configuration is optional. tasklist looks for, in order:

    --config PATH
    .tasklist.yaml, .tasklist.yml, .tasklist.toml in the working directory

Example (.tasklist.yaml):

    data-file: tasklist.json
    log-level: warn
    utc-offset: 0

Fields
------

  data-file    Task file path (default: tasklist.json)
  log-level    debug, info, warn, or error (default: warn). Logs go to
               stderr and never mix with the table.
  utc-offset   Whole hours from UTC that define "today" for due colors,
               -12 to 14 (default: 0)

Flags
-----

  --file PATH         Override data-file
  --log-level LEVEL   Override log-level
  --config PATH       Use this config file

Run 'tasklist init' to write a starter .tasklist.yaml.
`
