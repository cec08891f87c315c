package gen

var (
	swizzle2  = []string{"xy", "yx", "xx", "yy"}
	swizzle2z = []string{"xz", "yz", "zx", "zy"}
	swizzle2w = []string{"xw", "yw", "zw", "wx", "wy", "wz"}

	swizzle3  = []string{"xyz", "xzy", "yxz", "yzx", "zxy", "zyx", "xxx", "yyy", "zzz"}
	swizzle3w = []string{"xyw", "xzw", "yzw", "wxy", "wxz", "wyz"}

	swizzle4 = []string{
		"xyzw", "xywz", "xzyw", "xzwy", "xwyz", "xwzy",
		"yxzw", "yxwz", "yzxw", "yzwx", "ywxz", "ywzx",
		"zxyw", "zxwy", "zyxw", "zywx", "zwxy", "zwyx",
		"wxyz", "wxzy", "wyxz", "wyzx", "wzxy", "wzyx",
		"xxxx", "yyyy", "zzzz", "wwww",
	}
)

// swizzleComponents returns the component names and vector size for a
// swizzlable type, or a zero size for anything else.
func swizzleComponents(typeName string) ([]string, int) {
	switch typeName {
	case "Vec2":
		return []string{"x", "y"}, 2
	case "Vec3":
		return []string{"x", "y", "z"}, 3
	case "Vec4", "Quat":
		return []string{"x", "y", "z", "w"}, 4
	default:
		return nil, 0
	}
}

// SwizzleFields returns the field annotations for a vector or quaternion
// type: single components typed number, then two, three and four component
// combinations typed Vec2, Vec3 and Vec4. Unknown types yield nothing.
func SwizzleFields(typeName string) []string {
	components, size := swizzleComponents(typeName)
	if size == 0 {
		return nil
	}

	var lines []string
	seen := map[string]bool{}
	emit := func(names []string, fieldType string) {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			lines = append(lines, fieldLine(name, fieldType))
		}
	}

	emit(components, "number")

	if size >= 2 {
		pairs := append([]string{}, swizzle2...)
		if size >= 3 {
			pairs = append(pairs, swizzle2z...)
		}
		if size >= 4 {
			pairs = append(pairs, swizzle2w...)
		}
		emit(pairs, "Vec2")
	}

	if size >= 3 {
		triples := append([]string{}, swizzle3...)
		if size >= 4 {
			triples = append(triples, swizzle3w...)
		}
		emit(triples, "Vec3")
	}

	if size == 4 {
		emit(swizzle4, "Vec4")
	}

	return lines
}

func fieldLine(name, fieldType string) string {
	return "---@field " + name + " " + fieldType
}
