// Package diag is the side channel the logging stack uses to report
// on itself. When something goes wrong inside latelog there is, by
// definition, no working logger to complain to, so reports go to a
// plain *log.Logger writing to stderr by default.
//
// Error-class reports always pass. Debug and trace reports are gated
// by a verbosity threshold read once at Reporter construction:
// lowering the threshold to DebugLevel or TraceLevel turns on the
// corresponding internal state reports.
package diag
