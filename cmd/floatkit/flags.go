package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// fallbackViewport is used when stdout is not a terminal.
var fallbackViewport = geometry.NewSize(800, 600)

// parseRect accepts "x,y,w,h" or "x,y" for a virtual point anchor.
func parseRect(flag, value string) (geometry.Rect, error) {
	numbers, err := parseNumbers(value, ",")
	if err != nil {
		return geometry.Rect{}, fkerrors.NewInputError(flag, value, err)
	}
	switch len(numbers) {
	case 2:
		return geometry.VirtualPoint(numbers[0], numbers[1]), nil
	case 4:
		if numbers[2] < 0 || numbers[3] < 0 {
			return geometry.Rect{}, fkerrors.NewInputError(flag, value, errors.New("width and height must not be negative"))
		}
		return geometry.NewRect(numbers[0], numbers[1], numbers[2], numbers[3]), nil
	}
	return geometry.Rect{}, fkerrors.NewInputError(flag, value, errors.New("want x,y,width,height or x,y"))
}

// parseSize accepts "WxH".
func parseSize(flag, value string) (geometry.Size, error) {
	numbers, err := parseNumbers(strings.ToLower(value), "x")
	if err != nil {
		return geometry.Size{}, fkerrors.NewInputError(flag, value, err)
	}
	if len(numbers) != 2 {
		return geometry.Size{}, fkerrors.NewInputError(flag, value, errors.New("want WIDTHxHEIGHT"))
	}
	if numbers[0] < 0 || numbers[1] < 0 {
		return geometry.Size{}, fkerrors.NewInputError(flag, value, errors.New("width and height must not be negative"))
	}
	return geometry.NewSize(numbers[0], numbers[1]), nil
}

// parseOffset accepts a main-axis scalar ("8") or a "cross,main" pair.
func parseOffset(flag, value string) (placement.Offset, error) {
	numbers, err := parseNumbers(value, ",")
	if err != nil {
		return placement.Offset{}, fkerrors.NewInputError(flag, value, err)
	}
	switch len(numbers) {
	case 1:
		return placement.ScalarOffset(numbers[0]), nil
	case 2:
		return placement.PairOffset(numbers[0], numbers[1]), nil
	}
	return placement.Offset{}, fkerrors.NewInputError(flag, value, errors.New("want MAIN or CROSS,MAIN"))
}

func parseNumbers(value, sep string) ([]float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("empty value")
	}
	parts := strings.Split(value, sep)
	numbers := make([]float64, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// terminalSize reports the size of f in cells when f is a terminal.
func terminalSize(f *os.File) (geometry.Size, bool) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return geometry.Size{}, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return geometry.Size{}, false
	}
	return geometry.NewSize(float64(width), float64(height)), true
}
