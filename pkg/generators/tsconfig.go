package generators

import "github.com/menoncello/nimata-sub006/pkg/registry"

// Exactly one quality branch renders, each ending without a trailing comma.
const tsconfigSource = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "outDir": "./dist",
    "rootDir": "./src",
    "declaration": true,
    "sourceMap": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
{{#if light}}    "strict": false
{{/if}}{{#if standard}}    "strict": true
{{/if}}{{#if strict}}    "strict": true,
    "noUncheckedIndexedAccess": true,
    "noImplicitOverride": true,
    "exactOptionalPropertyTypes": true
{{/if}}  },
  "include": ["src"],
  "exclude": ["dist", "node_modules"]
}
`

func init() {
	registry.MustRegister(builtin, "tsconfig.json", Generator{
		Name:   "tsconfig.json",
		Path:   "tsconfig.json",
		Source: tsconfigSource,
	})
}
