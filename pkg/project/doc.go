// Package project defines the project model: what nimata scaffolds, for
// whom, and under which settings. A Config is assembled from layered
// configuration defaults, wizard answers, and command flags, validated
// once, and then handed to the scaffolder as a render context.
package project
