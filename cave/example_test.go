package cave_test

import (
	"fmt"

	"github.com/katalvlaran/caves/cave"
)

// ExampleClassify shows how labels map to kinds.
func ExampleClassify() {
	for _, label := range []string{"start", "HN", "kj", "end", "Start"} {
		n, err := cave.Classify(label)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-5s → %s\n", n, n.Kind())
	}
	// Output:
	// start → start
	// HN    → big
	// kj    → small
	// end   → end
	// Start → big
}
