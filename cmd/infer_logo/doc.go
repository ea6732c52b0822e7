// Package main provides the program that runs a trained logo classifier over a
// directory of images and writes one predicted label per image to
// predictions.txt.
package main
