/*
Package labelwiz is a terminal tool for labeling tabular data record by record.

A run has two phases. A setup wizard picks the interface language, loads a
CSV or Excel file, and chooses the label column and its type (a fixed set of
categorical options or free text). The annotation session then shows one
record at a time, accepts labels and navigation commands, and saves the result
as a new CSV next to the source file without ever overwriting an existing one.

# Layout

  - pkg/domain: datasets, wizard configuration, errors and view models.
  - pkg/dataset: reading CSV/XLSX/XLS files and writing CSV output.
  - internal/wizard: the setup flow as an explicit state machine.
  - internal/annotate: the annotation session, background saves and reminders.
  - pkg/runner: the prompt loop tying both phases to a terminal.
  - cmd/labelwiz: the command-line entry point.

# Usage

	labelwiz                      # interactive wizard
	labelwiz --config labelwiz.yaml --debug
	labelwiz --metrics-addr :2112 # expose Prometheus metrics while labeling
*/
package labelwiz
