// Package trainer wires the logo classifier pipeline together: it loads image
// directories, fits or applies the model, and reports how well a model does on
// the rows it was trained on.
package trainer
