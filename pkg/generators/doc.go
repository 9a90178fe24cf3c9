// Package generators holds the builtin artifact builders: the config and
// instruction files every scaffolded project gets regardless of which
// template directories are installed. Each generator is a template source
// rendered through the engine with the project context, registered under
// its artifact name. The scaffolder merges applicable generators with
// discovered template files to form the project plan.
package generators
