package controller

// SampleTexts are offered as one-key examples.
var SampleTexts = []string{
	"I absolutely love this product! It's amazing and works perfectly.",
	"This is the worst experience I've ever had. Terrible service!",
	"The movie was okay, nothing special but not bad either.",
	"Fantastic customer support! They resolved my issue quickly and professionally.",
	"I'm so disappointed with the quality. Waste of money.",
}

// LoadExample puts sample i into the input. Out of range indexes are ignored.
func (c *Controller) LoadExample(i int) bool {
	if i < 0 || i >= len(SampleTexts) {
		return false
	}
	c.view.SetInputValue(SampleTexts[i])
	return true
}
