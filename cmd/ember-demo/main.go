// Command ember-demo drives a small Ember interface headlessly: it pumps a
// few frames with scripted input against the recording renderer and prints
// the resulting draw log. It is a smoke test for the full stack (layout,
// state, arbitration, popups, theming) without a platform backend.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-drift/ember/pkg/theme"
	"github.com/go-drift/ember/pkg/ui"
	"github.com/go-drift/ember/pkg/uitest"
)

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme overlay")
	frames := flag.Int("frames", 3, "number of frames to pump")
	flag.Parse()

	h := uitest.NewHarness()
	if *themePath != "" {
		th, err := theme.LoadFile(*themePath)
		if err != nil {
			log.Fatalf("loading theme: %v", err)
		}
		h.Ctx.SetTheme(th)
	}

	volume := 0.4
	dark := false
	name := "ember"
	selected := 0

	build := func(c *ui.Context) {
		c.BeginVBox(-1)
		c.LabelStyled("Ember demo", c.Theme().Heading)

		c.BeginHBox(-1)
		if c.Button("save", "Save") {
			fmt.Fprintln(os.Stderr, "saved")
		}
		if index, ok := c.MenuButton("edit", "Edit", []string{"Cut", "Copy", "Paste"}); ok {
			fmt.Fprintf(os.Stderr, "menu item %d\n", index)
		}
		c.EndHBox()

		c.Checkbox("dark", "Dark mode", &dark)
		c.Slider("volume", &volume, 0, 1)
		c.TextEntry("name", &name)

		c.DataGrid("files",
			[]string{"Name", "Size"},
			[][]string{{"a.txt", "12"}, {"b.txt", "340"}, {"c.txt", "7"}},
			&selected)
		c.EndVBox()

		if dark && c.Theme().Brightness != theme.BrightnessDark {
			c.SetTheme(theme.DefaultDarkTheme())
		} else if !dark && c.Theme().Brightness != theme.BrightnessLight {
			c.SetTheme(theme.DefaultLightTheme())
		}
	}

	// A scripted click on the save button, then idle frames.
	h.Click(30, 40, build)
	for i := 2; i < *frames; i++ {
		h.Frame(build)
	}

	fmt.Printf("viewport %vx%v, %d ops in final frame:\n",
		h.Viewport.Width(), h.Viewport.Height(), len(h.Renderer.Ops))
	fmt.Print(h.Renderer.String())
}
