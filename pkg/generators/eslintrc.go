package generators

import "github.com/menoncello/nimata-sub006/pkg/registry"

const eslintrcSource = `{
  "root": true,
  "parser": "@typescript-eslint/parser",
  "plugins": ["@typescript-eslint"],
  "extends": [
    "eslint:recommended",
    "plugin:@typescript-eslint/recommended"{{#if strict}},
    "plugin:@typescript-eslint/recommended-requiring-type-checking"{{/if}}
  ],
  "parserOptions": {
    "ecmaVersion": 2022,
    "sourceType": "module"{{#if strict}},
    "project": "./tsconfig.json"{{/if}}
  },
  "env": {
    "node": true,
    "es2022": true
  },
  "rules": {
{{#if strict}}    "@typescript-eslint/no-explicit-any": "error",
    "@typescript-eslint/explicit-function-return-type": "error",
{{/if}}{{#if light}}    "@typescript-eslint/no-unused-vars": "warn",
{{/if}}    "no-console": "off"
  }
}
`

func init() {
	registry.MustRegister(builtin, ".eslintrc.json", Generator{
		Name:   ".eslintrc.json",
		Path:   ".eslintrc.json",
		Source: eslintrcSource,
	})
}
