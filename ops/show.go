/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 * show.go - Implementa l'operació SHOW. Mostra per pantalla la
 *           informació de la imatge.
 */

package ops

import (
  "fmt"
  "os"

  "github.com/adriagipas/sunxifw/imgs"
  "github.com/adriagipas/sunxifw/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func Show ( args *utils.Args ) error {

  // No es suporten arguments
  if len(args.OpArgs) != 0 {
    return fmt.Errorf ( "(SHOW) invalid arguments: %v", args.OpArgs )
  }

  // Executa operació. Un fitxer que no es pot descodificar no impedeix
  // mostrar els següents.
  print_name := len(args.Files)>1
  for name,file := range args.Files {
    fmt.Println("")
    if print_name {
      fmt.Printf("  %s) \"%s\"\n",name,file)
      fmt.Println("")
    }
    img,err := imgs.NewImage ( file )
    if err != nil {
      utils.Warning ( "%v", err )
      continue
    }
    if err = img.PrintInfo ( os.Stdout, "    " ); err != nil {
      utils.Warning ( "%v", err )
      continue
    }
    fmt.Println("")
  }

  return nil

} // end Show
