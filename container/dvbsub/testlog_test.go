/*
NAME
  testlog_test.go

DESCRIPTION
  testlog_test.go provides a minimal logging.Logger implementation for
  tests, recording messages instead of writing them anywhere.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dvbsub

// testLogger implements logging.Logger, recording every call for
// inspection instead of writing it anywhere.
type testLogger struct {
	entries []string
}

func (l *testLogger) Debug(msg string, args ...interface{})   { l.entries = append(l.entries, msg) }
func (l *testLogger) Info(msg string, args ...interface{})    { l.entries = append(l.entries, msg) }
func (l *testLogger) Warning(msg string, args ...interface{}) { l.entries = append(l.entries, msg) }
func (l *testLogger) Error(msg string, args ...interface{})   { l.entries = append(l.entries, msg) }
func (l *testLogger) Fatal(msg string, args ...interface{})   { l.entries = append(l.entries, msg) }

func newTestLogger() *testLogger { return &testLogger{} }
