package display

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// Inventory renders an inventory as "Inventory (3/5kg): ender_pearl (3kg)".
func Inventory(inv *game.Inventory) string {
	items := itemList(inv.Items())
	if items == "" {
		items = "Empty"
	}
	return fmt.Sprintf("Inventory (%g/%gkg): %s", inv.Weight(), inv.Capacity(), items)
}

// Death announces a death and lists what was dropped.
func Death(name string, dropped []*game.Item) string {
	items := itemList(dropped)
	if items == "" {
		items = "Nothing."
	}
	return fmt.Sprintf("* %s has died *\nDropped: %s", Title(name), items)
}

func itemList(items []*game.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.String())
	}
	return strings.Join(names, ", ")
}
