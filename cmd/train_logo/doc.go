// Package main provides the program that trains the logo classifier. It reads a
// directory of logo images and a directory of background images, fits a
// logistic regression on their resized pixels and saves the model to model.txt.
package main
