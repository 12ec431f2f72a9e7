//go:build ebiten

package main

import _ "github.com/gogpu/kitdemo/display/window"
