// Package testinput runs named batches of input tests against the current
// values of a form and reports a single pass/fail.
//
// A Batch holds the ordered tests for one logical input together with its
// default value and bounds. Batches are registered in a Batches collection
// that preserves insertion order, because the order decides which messages
// a form shows first.
//
// Builders such as BuildIPv4Batch or BuildNumberBatch assemble the common
// shapes and word their failure messages after the field label:
//
//	batches := testinput.NewBatches().
//	    Set("gateway", testinput.BuildIPv4Batch("Gateway")).
//	    Set("hostNumber", testinput.BuildNumberBatch("Host number", 1, 99))
//
//	test := testinput.NewTestInputFunction(batches, testinput.WithHooks(testinput.Hooks{
//	    OnFailure: func(f testinput.Failure) { messages.Set(f.BatchID, f.Message) },
//	    OnSuccess: func(batchID, _ string) { messages.Clear(batchID) },
//	}))
//
//	ok := test(testinput.Value("gateway", "10.0.0.1"))
//
// # Evaluation and notification
//
// Evaluate is pure: it resolves each batch's arguments, runs its tests and
// returns a Result. Run and TestInput call Evaluate and then replay the
// Result into Hooks, unless the request sets IsIgnoreOnCallbacks. Running
// the same request twice yields the same Result and the same hook calls.
//
// Within a batch, required tests stop at the first failure unless the
// request sets IsContinueOnFailure. A failing batch never stops the batches
// that follow it.
package testinput
