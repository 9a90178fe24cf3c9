package generators

import "github.com/menoncello/nimata-sub006/pkg/registry"

// packageJSONSource keeps conditional entries above the fixed ones so the
// output stays valid JSON whichever branches render.
const packageJSONSource = `{
  "name": "{{name}}",
  "version": "0.1.0",
  "description": "",
  "type": "module",
  "license": "{{license}}",
  "author": "{{author}}",
{{#if isCli}}  "bin": {
    "{{name}}": "./dist/cli.js"
  },
{{/if}}  "main": "./dist/index.js",
  "types": "./dist/index.d.ts",
  "files": [
    "dist"
  ],
  "scripts": {
{{#if isWeb}}    "dev": "vite",
{{/if}}{{#if strict}}    "typecheck": "tsc --noEmit",
{{/if}}    "build": "tsc -p tsconfig.json",
    "test": "vitest run",
    "lint": "eslint ."
  },
  "devDependencies": {
{{#if isWeb}}    "vite": "^5.4.0",
{{/if}}    "@types/node": "^22.5.0",
    "eslint": "^9.9.0",
    "typescript": "^5.5.4",
    "vitest": "^2.0.5"
  }
}
`

func init() {
	registry.MustRegister(builtin, "package.json", Generator{
		Name:   "package.json",
		Path:   "package.json",
		Source: packageJSONSource,
	})
}
