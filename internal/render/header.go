package render

// Header prints the banner panel followed by a full-width timestamp panel
func (c *Console) Header() {
	art := panel{
		border:     roundedBorder,
		edge:       c.bold("magenta"),
		titleStyle: c.bold("cyan"),
		title:      bannerTitle,
		subtitle:   bannerSubtitle,
	}
	c.println(art.render(c.bold("magenta").Render(banner)))

	stamp := panel{
		border: roundedBorder,
		edge:   c.bold("blue"),
		width:  c.width,
	}
	text := "System Overview as of " + c.now().Format(timeLayout)
	c.println(stamp.render(c.bold("cyan").Render(text)))
}
