// Package project classifies directories: git repository, JS package, both or
// neither, and for repositories the hosting service of the origin remote.
package project
