/*
Package runner drives the labeling tool end to end.

It is the bridge between the wizard state machine, the annotation session and
the person at the keyboard. The runner renders each step through a Prompter,
turns answers into typed wizard inputs, and runs the record loop with its
command vocabulary.

# Key Components

  - Runner: the orchestrator. Run blocks until the user finishes or quits.
  - Prompter: decouples how questions are asked from the flow itself.
  - TextPrompter: line-based prompts over any io.Reader/io.Writer.
  - SurveyPrompter: arrow-key prompts for interactive terminals.

# Usage

	r := runner.New(
		runner.NewTextPrompter(os.Stdin, os.Stdout),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
