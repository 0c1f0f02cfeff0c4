package workspace

// Options configures where a Workspace writes files.
type Options struct {
	// Root is the output directory.
	Root string
	// Subdir is inserted between Root and the package directories.
	Subdir string
	// Prefixes maps a package prefix to a directory. The longest matching
	// prefix wins.
	Prefixes map[string]string
	// ModulePath overrides the module path read from go.mod for Go files.
	ModulePath string
}

type Option func(*Options)

func WithRoot(dir string) Option {
	return func(o *Options) { o.Root = dir }
}

func WithSubdir(dir string) Option {
	return func(o *Options) { o.Subdir = dir }
}

// WithPackagePrefix writes packages starting with prefix below dir.
func WithPackagePrefix(prefix, dir string) Option {
	return func(o *Options) {
		if o.Prefixes == nil {
			o.Prefixes = map[string]string{}
		}
		o.Prefixes[prefix] = dir
	}
}

func WithPackagePrefixes(m map[string]string) Option {
	return func(o *Options) {
		for k, v := range m {
			WithPackagePrefix(k, v)(o)
		}
	}
}

func WithModulePath(path string) Option {
	return func(o *Options) { o.ModulePath = path }
}

func NewOptions(opts ...Option) Options {
	o := Options{Root: "."}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
