// Package testing drives duit UIs in tests, without a backend.
//
// # Quick Start
//
// Create a tester, load specs and show one, then interact and assert:
//
//	func TestCounter(t *testing.T) {
//	    tester := duittest.NewUITesterWithT(t)
//	    tester.AddSpecs(counterSpec)
//	    inst := tester.MustShow(t, "counter")
//
//	    tester.Click(duittest.ByID(inst, "increment"))
//	    for _, msg := range duittest.Messages[Increment](tester) {
//	        // update widgets through handles
//	    }
//	    tester.Pump()
//
//	    if !tester.Find(duittest.ByText("1")).Exists() {
//	        t.Error("expected '1'")
//	    }
//	}
//
// Gestures are turned into host input and go through the same input
// tracker and window dispatch as a real backend. Element positions come
// from the last Pump, so pump after changes that move widgets.
//
// # Snapshot Testing
//
// Capture and compare pod trees and display operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	DUIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// Double clicks and the text cursor blink read the tester's fake clock:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import duittest "github.com/go-duit/duit/pkg/testing"
package testing
