/*
Package domain contains the core models shared by the labeling wizard and the
annotation session.

It is kept free of I/O: loading and writing tables lives in pkg/dataset, and
presentation lives in pkg/runner.

# Key Entities

  - Dataset: an ordered table of string cells with a fixed column order.
  - WizardConfig: the label setup collected by the wizard (source file,
    label column, label type and options).
  - AnnotationState: the record pointer, the unsaved flag and the control value.
  - ActionRequest: a structural description of what the host should render or ask.
*/
package domain
