// Package cmakecache extracts library dependencies from CMake cache files.
//
// CMake records the link interface of every library target in the cache as
//
//	<target>_LIB_DEPENDS:STATIC=general;<dep1>;general;<dep2>;...;
//
// Each dependency is preceded by a link keyword (general, optimized or
// debug). The parser turns every such entry into a config.Component whose
// DependsOn lists the dependency names in the order CMake wrote them.
package cmakecache
